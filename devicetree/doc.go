// Package devicetree plans storage configuration actions.
//
// A Tree describes the storage stack (disks, partitions, volume groups,
// logical volumes, RAID arrays, LUKS containers, btrfs volumes) as devices
// with parent links. Actions create, destroy or resize either a device or
// the format (filesystem, PV signature, LUKS header...) on a device.
//
// The Planner turns a list of actions into an executable order:
//
//  1. Validate every action against the tree.
//  2. Prune actions that cancel each other out (see Prune).
//  3. Derive ordering constraints with Requires plus any explicit After
//     references and custom rules.
//  4. Ask tsort for a topological order of the action IDs.
//
// Circular constraints are fatal: Plan returns a *PlanCycleError and no
// partial plan. The Executor then applies the ordered actions one by one
// through an Applier and stops at the first failure.
package devicetree
