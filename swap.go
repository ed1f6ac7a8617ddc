package hxtoggle

// SwapMode is an hx-swap strategy for how response HTML replaces the target.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag. Switches
	// re-render with it.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents.
	SwapInner SwapMode = "innerHTML"

	// SwapNone discards the response. Useful for listeners that only react
	// to events.
	SwapNone SwapMode = "none"
)
