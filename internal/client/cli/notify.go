package cli

import "fmt"

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// PrintNotifier renders store notifications as console lines. It backs the
// cart and checkout notifications the web client shows as toasts.
type PrintNotifier struct{}

func (PrintNotifier) Success(message, description string) {
	printlnFn(fmt.Sprintf("[ok] %s: %s", message, description))
}

func (PrintNotifier) Warning(message, description string) {
	printlnFn(fmt.Sprintf("[warn] %s: %s", message, description))
}

func (PrintNotifier) Error(message, description string) {
	printlnFn(fmt.Sprintf("[error] %s: %s", message, description))
}
