// Package annotate draws visual feedback onto frames that have already been
// classified: bounding boxes and labels for detected targets, and the
// performance HUD shown next to each strategy.
//
// Every function here mutates the frame it is given. Callers pass a
// CloneFrame copy, never the captured frame, so drawing can not leak into the
// input of another strategy.
package annotate
