// Package hxtoggle provides a two-state (on/off) state holder for
// server-rendered Templ and HTMX interfaces, and three ways for components
// deep in a render tree to read and change it without threading parameters.
//
// # Engine
//
// An Engine owns one boolean. It is either uncontrolled, storing the value
// itself, or controlled, deferring the value to an owner:
//
//	e := hxtoggle.New(hxtoggle.WithDefaultOn(true), hxtoggle.OnChange(save))
//	e.Toggle()  // stored value flips, save(false) runs, views re-render
//	e.Reset()   // back to true
//
//	c := hxtoggle.New(hxtoggle.WithOn(false), hxtoggle.OnChange(request))
//	c.Toggle()  // request(true) runs; nothing changes until c.SetOn(true)
//
// The control mode is fixed by New. Toggle and Reset are stable: every
// Envelope of an engine carries the same two functions.
//
// # Composition
//
// Ambient scope: Provide (or Engine.Provider) puts an Envelope in the render
// context; OnText, OffText, Button and Connected read the nearest one.
// Outside any scope they fail with ErrMissingScope instead of guessing.
//
//	e.Provider(page(hxtoggle.OnText(on()), hxtoggle.OffText(off()), hxtoggle.Button()))
//
// Render injection: Engine.Render calls a function with the Envelope on
// every change and keeps its latest output.
//
//	v := e.Render(func(env hxtoggle.Envelope) templ.Component {
//	    return label(env.On)
//	})
//
// Wrapping: WithToggle turns a Consumer into one fed from the nearest scope,
// keeping its Subtext part.
//
// # Lockout
//
// Lockout is an owner of a controlled engine that forces the value off once
// the toggle count reaches a threshold, until Reset.
//
// # HTTP
//
// Switch mounts an engine under a Registry. Its Button posts to the
// switch's toggle action; the response re-renders the switch and emits
// EventChanged so every other switch on the page refreshes.
//
//	reg := hxtoggle.NewRegistry(key)
//	sw := hxtoggle.NewSwitch("main", lock.Engine(), view, hxtoggle.WithSwitchLockout(lock))
//	reg.Add(sw)
//	http.Handle("/_c/", reg.Handler())
//
// Switches sharing an engine share its request lock. Pages rendering a
// switch while requests may be in flight render sw.Locked().
package hxtoggle
