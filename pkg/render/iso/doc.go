// Package iso turns an activity calendar into an isometric voxel scene.
//
// [Build] is the whole engine: every day of the calendar becomes a column of
// unit blocks whose height follows the day's count and whose materials come
// from the classification rules in package material. Columns are sorted back
// to front by package ordering, tooltips are derived for every column with
// land, and the bounding viewport is computed analytically from the number
// of weeks so that nothing is ever clipped.
//
// The returned [Scene] is inert data. Serializing it to SVG, JSON or PNG is
// the job of package sink; revealing tooltips on hover belongs to whatever
// presentation layer displays the result (see package hover).
//
// # Detail modes
//
// [ModeRich] draws the full ore-table columns with tooltips. [ModeSimple]
// draws one surface block per day chosen from the day's color level over a
// thin water slab, without tooltips.
//
// # Randomness
//
// Deep layers are resolved with a seeded generator. Pass [WithSeed] for a
// reproducible scene; otherwise a fresh seed is drawn and recorded on
// [Scene.Seed] so the result can be reproduced later.
package iso
