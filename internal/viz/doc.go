// Package viz renders binary systems in the terminal.
//
//   - [Canvas]: braille dot matrix with a world-to-screen [Viewport]
//   - [Model]: Bubble Tea live orbit view driven by a session
//   - [Heatmap]: character shading for scalar grids
//   - Themes colour the bodies consistently across views and exports
//
// # Key Bindings
//
//	Space - Pause/Resume
//	F     - Cycle reference frame
//	Tab   - Select parameter
//	↑/↓   - Tune parameter (restarts the orbit)
//	R     - Reset
//	T     - Cycle themes
//	?     - Help overlay
package viz
