package sigslot

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitMutation(t *testing.T) {
	t.Run("slot disconnects itself", func(t *testing.T) {
		log := []string{}

		sig := New[int, int]()
		var first *Connection
		first = sig.Connect(func(int) int {
			log = append(log, "1")
			assert.True(t, sig.Disconnect(first))
			return 1
		})
		sig.Connect(func(int) int { log = append(log, "2"); return 2 })
		sig.Connect(func(int) int { log = append(log, "3"); return 3 })

		assert.Equal(t, 3, sig.Emit(0))
		assert.Equal(t, []string{"1", "2", "3"}, log)
		assert.Equal(t, 2, sig.Size())

		assert.Equal(t, 3, sig.Emit(0))
		assert.Equal(t, []string{"1", "2", "3", "2", "3"}, log)
	})

	t.Run("slot disconnects the next one", func(t *testing.T) {
		log := []string{}

		sig := New[int, int]()
		var second *Connection
		sig.Connect(func(int) int {
			log = append(log, "1")
			sig.Disconnect(second)
			return 1
		})
		second = sig.Connect(func(int) int { log = append(log, "2"); return 2 })
		sig.Connect(func(int) int { log = append(log, "3"); return 3 })

		assert.Equal(t, 3, sig.Emit(0))
		assert.Equal(t, []string{"1", "3"}, log)
		assert.Equal(t, 2, sig.Size())
	})

	t.Run("slot disconnects the last one", func(t *testing.T) {
		log := []string{}

		sig := New[int, int]()
		var last *Connection
		sig.Connect(func(int) int {
			log = append(log, "1")
			sig.Disconnect(last)
			return 1
		})
		last = sig.Connect(func(int) int { log = append(log, "2"); return 2 })

		assert.Equal(t, 1, sig.Emit(0))
		assert.Equal(t, []string{"1"}, log)
	})

	t.Run("slot disconnects an already visited one", func(t *testing.T) {
		log := []string{}

		sig := NewCollected[int](Vector[string]())
		disconnected := []bool{}

		first := sig.Connect(func(int) string { log = append(log, "1"); return "1" })
		sig.Connect(func(int) string {
			log = append(log, "2")
			disconnected = append(disconnected, sig.Disconnect(first))
			return "2"
		})
		sig.Connect(func(int) string { log = append(log, "3"); return "3" })

		assert.Equal(t, []string{"1", "2", "3"}, sig.Emit(0))
		assert.False(t, first.Connected())
		assert.Equal(t, []string{"2", "3"}, sig.Emit(0))
		assert.Equal(t, []string{"1", "2", "3", "2", "3"}, log)
		assert.Equal(t, []bool{true, false}, disconnected)
	})

	t.Run("slot disconnects everything", func(t *testing.T) {
		log := []string{}

		sig := NewVoid[int]()
		sig.Connect(func(int) {
			log = append(log, "1")
			sig.DisconnectAll()
		})
		sig.Connect(func(int) { log = append(log, "2") })

		sig.Emit(0)
		sig.Emit(0)

		assert.Equal(t, []string{"1"}, log)
		assert.Equal(t, 0, sig.Size())
	})

	t.Run("slot connected during emission runs from the next one", func(t *testing.T) {
		log := []string{}

		sig := NewVoid[int]()
		connected := false
		sig.Connect(func(n int) {
			log = append(log, fmt.Sprintf("a%d", n))
			if !connected {
				connected = true
				sig.Connect(func(n int) { log = append(log, fmt.Sprintf("new%d", n)) })
			}
		})
		sig.Connect(func(n int) { log = append(log, fmt.Sprintf("b%d", n)) })

		sig.Emit(1)
		sig.Emit(2)

		assert.Equal(t, []string{"a1", "b1", "a2", "b2", "new2"}, log)
		assert.Equal(t, 3, sig.Size())
	})

	t.Run("slot connecting on every call terminates", func(t *testing.T) {
		sig := NewVoid[int]()
		sig.Connect(func(int) {
			sig.Connect(func(int) {})
		})

		sig.Emit(0)
		assert.Equal(t, 2, sig.Size())

		sig.Emit(0)
		assert.Equal(t, 3, sig.Size())
	})

	t.Run("disconnect then reconnect during emission", func(t *testing.T) {
		log := []string{}

		sig := NewVoid[int]()
		var self *Connection
		var slot func(int)
		slot = func(n int) {
			log = append(log, fmt.Sprintf("slot%d", n))
			sig.Disconnect(self)
			self = sig.Connect(slot)
		}
		self = sig.Connect(slot)
		sig.Connect(func(n int) { log = append(log, fmt.Sprintf("tail%d", n)) })

		sig.Emit(1)
		sig.Emit(2)

		assert.Equal(t, []string{"slot1", "tail1", "tail2", "slot2"}, log)
		assert.Equal(t, 2, sig.Size())
	})
}

func TestEmitRecursion(t *testing.T) {
	t.Run("nested emission completes first", func(t *testing.T) {
		log := []string{}

		var sig *Signal[int, int, []int]
		sig = NewCollected[int](Vector[int]())
		sig.Connect(func(n int) int {
			log = append(log, fmt.Sprintf("a%d", n))
			if n == 0 {
				log = append(log, fmt.Sprint(sig.Emit(1)))
			}
			return n * 10
		})
		sig.Connect(func(n int) int {
			log = append(log, fmt.Sprintf("b%d", n))
			return n*10 + 1
		})

		assert.Equal(t, []int{0, 1}, sig.Emit(0))
		assert.Equal(t, []string{"a0", "a1", "b1", "[10 11]", "b0"}, log)
	})

	t.Run("nested emission disconnects a slot of the outer one", func(t *testing.T) {
		log := []string{}

		sig := NewVoid[int]()
		var third *Connection
		sig.Connect(func(n int) {
			log = append(log, fmt.Sprintf("a%d", n))
			if n == 0 {
				sig.Emit(1)
			}
		})
		sig.Connect(func(n int) {
			log = append(log, fmt.Sprintf("b%d", n))
			if n == 1 {
				sig.Disconnect(third)
			}
		})
		third = sig.Connect(func(n int) { log = append(log, fmt.Sprintf("c%d", n)) })

		sig.Emit(0)

		assert.Equal(t, []string{"a0", "a1", "b1", "b0"}, log)
		assert.Equal(t, 2, sig.Size())
	})

	t.Run("nested emission stopped early does not stop the outer one", func(t *testing.T) {
		log := []string{}

		var sig *Signal[int, bool, bool]
		sig = NewCollected[int](Until(NotZero[bool]))
		sig.Connect(func(n int) bool {
			log = append(log, fmt.Sprintf("a%d", n))
			if n == 0 {
				log = append(log, fmt.Sprint(sig.Emit(1)))
			}
			return true
		})
		sig.Connect(func(n int) bool {
			log = append(log, fmt.Sprintf("b%d", n))
			return n == 0
		})
		sig.Connect(func(n int) bool {
			log = append(log, fmt.Sprintf("c%d", n))
			return true
		})

		assert.True(t, sig.Emit(0))
		assert.Equal(t, []string{"a0", "a1", "b1", "false", "b0", "c0"}, log)
	})

	t.Run("slot emits another signal", func(t *testing.T) {
		log := []string{}

		inner := New[string, string]()
		inner.Connect(func(s string) string { return "<" + s + ">" })

		outer := NewVoid[string]()
		outer.Connect(func(s string) { log = append(log, inner.Emit(s)) })
		outer.Connect(func(s string) { log = append(log, s) })

		outer.Emit("x")

		assert.Equal(t, []string{"<x>", "x"}, log)
	})
}

func TestEmitPanic(t *testing.T) {
	t.Run("panic reaches the caller and stops the emission", func(t *testing.T) {
		log := []string{}

		sig := NewVoid[int]()
		sig.Connect(func(int) {
			log = append(log, "1")
			Current().Disconnect()
		})
		sig.Connect(func(n int) {
			if n == 0 {
				panic("boom")
			}
			log = append(log, "2")
		})
		sig.Connect(func(int) { log = append(log, "3") })

		assert.PanicsWithValue(t, "boom", func() { sig.Emit(0) })
		assert.Equal(t, []string{"1"}, log)
		assert.Equal(t, 2, sig.Size())
		assert.Nil(t, Current())

		sig.Emit(1)
		assert.Equal(t, []string{"1", "2", "3"}, log)
	})

	t.Run("panic inside a nested emission", func(t *testing.T) {
		calls := 0

		sig := New[int, int]()
		sig.Connect(func(n int) int {
			calls++
			if n > 0 {
				return sig.Emit(n - 1)
			}
			panic(fmt.Errorf("depth %d", calls))
		})

		assert.PanicsWithError(t, "depth 3", func() { sig.Emit(2) })
		assert.Equal(t, 1, sig.Size())
		assert.Nil(t, Current())
	})
}

func TestSizeMatchesConnections(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	sig := New[int, int]()
	conns := []*Connection{}

	for range 1000 {
		switch op := rng.IntN(4); {
		case op < 2:
			conns = append(conns, sig.Connect(func(n int) int { return n }))
		case op == 2 && len(conns) > 0:
			c := conns[rng.IntN(len(conns))]
			wasConnected := c.Connected()
			assert.Equal(t, wasConnected, sig.Disconnect(c))
			assert.False(t, sig.Disconnect(c))
		default:
			sig.Emit(0)
		}

		connected := 0
		for _, c := range conns {
			if c.Connected() {
				connected++
			}
		}
		assert.Equal(t, connected, sig.Size())
	}
}
