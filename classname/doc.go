// Package classname builds CSS class attribute values from conditional
// inputs.
//
// Inputs are [Value]s: plain strings, conditional toggles, nested lists or
// nothing at all. [Join] flattens them into a space-separated string, and a
// [Merger] additionally drops classes that are overridden by later classes
// of the same utility group, e.g.
//
//	classname.CN(classname.String("p-2 text-sm"), classname.Map(map[string]bool{"p-4": true}))
//	// "text-sm p-4"
//
// Which classes conflict is decided by a [Resolver]. [TailwindResolver] uses
// the Tailwind CSS rules, [GroupTable] uses a user supplied table.
//
// Templates get the same helper as "cn" through [FuncMap].
package classname
