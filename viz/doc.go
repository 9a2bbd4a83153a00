// Package viz renders solver output to PNG files.
//
// Two charts are provided:
//
//   - Route — the cities as a scatter with name labels, connected by the
//     closed tour polyline (the last city links back to the first).
//
//   - Convergence — the best tour length per GA generation, for judging
//     whether a run was given enough generations.
//
// Rendering is file-based and side-effect free beyond the written file;
// nothing here feeds back into the solvers.
package viz
