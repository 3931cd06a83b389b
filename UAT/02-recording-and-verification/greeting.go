// Package greetings demonstrates call recording and the verification
// helpers against a mocked rendering function.
package greetings

//go:generate go run github.com/toejough/mockfn/shimgen renderGreeting --namespace greetings

// renderGreeting is the original template-expansion behavior.
func renderGreeting(name string) string {
	return "Hello, " + name + "!"
}

// Welcome greets every attendee in order.
func Welcome(attendees []string) []string {
	out := make([]string, len(attendees))
	for i, name := range attendees {
		out[i] = RenderGreeting(name)
	}

	return out
}
