// Package layout computes card geometry.
//
// Each engine maps normalized statistics to absolute pixel positions for a
// fixed SVG template. The engines are pure: identical input yields identical
// output, and none of them touch the network, the cache or the template
// itself.
//
//   - [Calendar] lays out a contribution calendar as week columns with month
//     and weekday legends.
//   - [LanguageBar] lays out a stacked percentage bar with a two-column legend.
//   - [Tags] places pin tags on a single row against a pixel budget.
//   - [Pin] wraps a pin description and positions the language and counter
//     row.
package layout
