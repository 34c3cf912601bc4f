// Package folio renders an interactive portfolio page with [Ebitengine]: a
// custom cursor that reacts to what it hovers, and a slowly drifting 3D
// point field whose motion follows the section being read.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	app, err := folio.NewApp(folio.DefaultConfig(), 1280, 720, 60)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := folio.Run(app, folio.RunConfig{ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//
// Hosts that own their loop (a terminal, a test) call [App.Update] with one
// [FrameInput] per tick and draw from [App.Cursor], [App.ProjectedField],
// and the page tree under [Stage.Root].
//
// # Pointer tracking
//
// [PointerTracker] subscribes to an [EventSource] (usually the [Stage]) and
// keeps a [PointerState]: position, whether an interactive element is
// hovered, its label, and whether a button is held. An element is
// interactive when it is a button, a link, has role "button", or is marked
// [Node.Interactive]; hovering a descendant of such an element counts, up to
// [DefaultMaxDepth] ancestors. [PointerTracker.Close] removes every subscription.
//
// [CursorGeometry.Present] maps a state to [Presentation] targets for the
// dot, ring, and label. Pressed wins over hovering. [CursorAnimator] eases
// the drawn cursor toward those targets with damped springs.
//
// # Ambient field
//
// [AmbientField] samples a fixed point cloud once and recomputes a
// [FieldTransform] each tick from elapsed time and the current section.
// [Projector] maps the transformed points through a perspective camera onto
// the viewport. [SectionTracker] turns scroll position into the current
// section.
//
// # Configuration
//
// [Config] is loaded from YAML with [LoadConfig] and overridden from the
// environment (and an optional .env file) with [Config.ApplyEnv].
//
// # Debugging and scripted runs
//
// [Stage.SetDebugMode] logs event stats to stderr. [LoadScript] reads a YAML
// walk through the page (clicks, scrolls, section jumps and expectations)
// that [App.SetScript] replays frame by frame; [Stage.Screenshot] writes PNGs.
//
// [Ebitengine]: https://ebitengine.org
package folio
