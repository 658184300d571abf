// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggring draws an arcprogress.Bar with gg.
//
// The Bar owns geometry and animation; this package only turns the angles
// of the current frame into gg path and stroke calls. The data flow is:
//
//	Bar.Tick -> Bar.Angles / Bar.DrawRect -> Renderer.Draw -> gg.Context
//
// # Usage
//
//	r := ggring.New(ggring.WithLabel(face))
//	dc := gg.NewContext(128, 128)
//	dc.Clear()
//	if err := r.Draw(dc, bar); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("frame.png")
//
// # Angles
//
// arcprogress angles are degrees, clockwise from 3 o'clock. gg angles are
// radians in the same screen orientation, so the conversion is a plain
// scale. Negative sweeps are drawn from start+sweep to start, and a sweep
// of a full circle or more is drawn as a closed circle so the caps never
// meet.
package ggring
