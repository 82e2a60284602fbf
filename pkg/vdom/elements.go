package vdom

// Element constructors for common tags. Each is El with the tag fixed.

// Div creates a <div> element.
func Div[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("div", attrs, children...)
}

// Span creates a <span> element.
func Span[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("span", attrs, children...)
}

// P creates a <p> element.
func P[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("p", attrs, children...)
}

// Button creates a <button> element.
func Button[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("button", attrs, children...)
}

// Ul creates a <ul> element.
func Ul[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("ul", attrs, children...)
}

// Li creates a <li> element.
func Li[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("li", attrs, children...)
}

// H1 creates an <h1> element.
func H1[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("h1", attrs, children...)
}

// A creates an <a> element.
func A[Msg any](attrs []Attribute[Msg], children ...*Html[Msg]) *Html[Msg] {
	return El("a", attrs, children...)
}
