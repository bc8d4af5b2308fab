package gate_test

import (
	"fmt"

	"github.com/creachadair/gate"
)

func Example() {
	w := gate.New()
	n := w.Notifier()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Wait()
		fmt.Println("ready")
	}()

	n.Notify()
	<-done
	// Output:
	// ready
}

func Example_spectator() {
	w := gate.New()
	sp := w.Spectator()

	fmt.Println(sp.IsReady())
	w.Setter().Set()
	fmt.Println(sp.IsReady())
	w.Reset()
	fmt.Println(sp.IsReady())
	// Output:
	// false
	// true
	// false
}
