// Package model defines the data carried through one apodwall run.
// A Run accumulates state as pipeline steps execute: the fetched page,
// the resolved image URL, and the path of the saved image. Nothing in this
// package is persisted; a Run lives for a single invocation.
package model
