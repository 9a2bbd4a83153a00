// Package tourio reads and writes the JSON formats surrounding the solvers.
//
// Three concerns live here, none of them algorithmic:
//
//   - LoadCities — consume a tour-definition file: a mapping with a "cities"
//     key holding an ordered list of {name, x, y} objects. Names must be
//     unique and every field present. Loading also populates all pairwise
//     distance caches, so solver inputs arrive with the distance contract
//     already satisfied.
//
//   - SaveSolution — produce a solution file: {"total_distance": …,
//     "route": [{name, x, y}, …]} reflecting the final city order.
//
//   - Convert — reshape a city-population dataset ({name, population,
//     coords:{lat,lon}} records) into the tour-definition format, applying a
//     minimum-population threshold and an optional maximum-count cap, sorted
//     by descending population.
//
// Error taxonomy follows the module convention: malformed records during
// conversion are skipped with a warning (per-record resilience), while I/O
// or parse failures abort the whole operation. Loading is stricter — a
// malformed tour-definition record is a configuration error and fatal.
package tourio
