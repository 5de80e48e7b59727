// Package services holds the console core: the record list cache, the form
// state machine and the mutation coordinator, glued together by Console.
//
// All exported methods of Console and its components must be called from the
// console loop (see package loop). Network calls run off-loop; their
// completion handlers are queued back onto it and always run, even when the
// operator has since moved on to another record or reset the form.
//
// The core reaches the presentation layer only through Presenter: it pushes a
// View snapshot after every change, raises blocking notices, asks for the form
// to be brought into view and requests delete confirmations.
package services
