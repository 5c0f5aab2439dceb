// Package ui provides immediate-mode panel primitives drawn onto the render buffer's text layer.
//
// Core abstraction is Region, a rectangle of terminal cells within a RenderBuffer.
// All drawing is relative to region bounds with automatic clipping.
//
// Usage pattern:
//
//	root := ui.NewRegion(buf, 0, 0, w, h)
//	panel := root.Sub(2, 1, 40, 12)
//	panel.Fill(render.RgbPanelBg, 0.85)
//	content := panel.Card("GALAXY MONITOR", ui.LineSingle, render.RgbPurple)
//	content.Text(0, 0, "Status: TRANSCENDENT", render.RgbTerminalGreen)
package ui
