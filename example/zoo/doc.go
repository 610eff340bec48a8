// Package zoo demonstrates two ways of wiring event handling between an owner and its workers.
//
// A TaskKeeper is handed a Tasks capability at construction and calls it when it is time to
// feed; whoever implements Tasks decides what feeding means, but the binding is fixed for
// the keeper's lifetime.
//
// A CallbackKeeper owns a callback.Action with a default behavior. Its owner re-registers
// that slot at any time, from any goroutine, with a closure or a method value.
//
// Managers own keepers and a shared FoodStock. Zoo runs the managers on a rate-limited
// feeding loop until its context is canceled.
package zoo
