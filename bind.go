package sigslot

// Bind returns a slot calling method on obj. It is meant for method
// expressions:
//
//	sig.Connect(sigslot.Bind(&foo, (*Foo).OnEvent))
//
// The slot keeps obj reachable, it is up to the caller to disconnect it
// when obj should no longer be called.
func Bind[T, A, R any](obj T, method func(T, A) R) func(A) R {
	if method == nil {
		panic("sigslot: nil method")
	}

	return func(arg A) R {
		return method(obj, arg)
	}
}

// BindVoid is Bind for methods returning nothing.
func BindVoid[T, A any](obj T, method func(T, A)) func(A) {
	if method == nil {
		panic("sigslot: nil method")
	}

	return func(arg A) {
		method(obj, arg)
	}
}
