package main

import (
	"fmt"

	"github.com/meaningwell/go-bag"
)

type feed struct {
	subscribers bag.Bag[func(string)]
}

func (f *feed) subscribe(notify func(string)) bag.Token {
	return f.subscribers.Insert(notify)
}

func (f *feed) unsubscribe(token bag.Token) {
	f.subscribers.Remove(token)
}

func (f *feed) publish(update string) {
	f.subscribers.Each(func(notify func(string)) {
		notify(update)
	})
}

func main() {
	f := &feed{}

	f.subscribe(func(update string) { fmt.Println("console:", update) })
	audit := f.subscribe(func(update string) { fmt.Println("audit:", update) })
	f.subscribe(func(update string) { fmt.Println("console:", update) })

	f.publish("started")

	f.unsubscribe(audit)
	f.unsubscribe(audit) // tearing down twice is harmless

	f.publish("stopped")
}
