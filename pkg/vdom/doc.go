// Package vdom provides the immutable virtual tree and the structural
// differ at the heart of Alder.
//
// An Html value describes desired UI structure. Diff compares two trees
// and produces a Patch describing the minimal transform from the old
// tree to the new one; the render package applies that patch to a live
// document. Trees are never mutated after construction.
//
// The Msg type parameter is the application's message type. It is
// carried opaquely: the engine never inspects a message, it only
// forwards it to the application's update function when the associated
// event fires.
package vdom
