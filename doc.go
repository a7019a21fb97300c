// Package warp renders a warp-speed starfield and decrypting headlines, the
// animated hero of a portfolio site, for [Ebitengine], terminals and
// headless PNG output.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	field, _ := warp.NewStarfield(800, 600, warp.DefaultStarfieldConfig(), nil)
//	scene := warp.NewScene(field)
//	font, _ := warp.LoadMonoFont(48)
//	scene.AddLabel(warp.NewLabel("name", "OUSSAMA", font, 30*time.Millisecond, nil))
//	warp.Run(scene, warp.RunConfig{Title: "Warp", Width: 800, Height: 600})
//
// # Starfield
//
// A [Starfield] owns a fixed pool of stars in 3D space. Every [Starfield.Frame]
// fades the previous frame, moves each star toward the viewer, recycles the
// ones that passed it, projects them with perspective scaling and draws them
// onto a [Surface]. Degenerate projections (non-finite or non-positive
// radius, far off-surface positions) are skipped silently.
//
// Surfaces: [ImageSurface] (Ebitengine image), [RasterSurface] (CPU image,
// PNG snapshots) and [TermSurface] (tcell screen).
//
// # Decrypting text
//
// A [Decrypter] resolves one character per tick while unresolved positions
// flicker through [Alphabet]. [DecryptText] drives it from frame time,
// [Revealer] from a wall-clock ticker, and [Label] draws it in a [Scene].
//
// # Randomness
//
// Every simulator takes a [Rand]; pass [NewRand] with a fixed seed for
// reproducible runs, or nil for the process-wide source.
//
// [Ebitengine]: https://ebitengine.org
package warp
