package arbitrary

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/NCrashed/dcheck/pkg/generator"
	"github.com/NCrashed/dcheck/pkg/optional"
)

// Capability is the type-erased view of an Arbitrary instance, keyed by the
// concrete type it generates. It is the surface a reflection-driven caller
// (the constraint-checking driver) consumes: it discovers parameter types as
// reflect.Type values and cannot name them statically.
type Capability struct {
	// Type is the concrete type this capability generates.
	Type reflect.Type

	generate func() *generator.Generator[any]
	shrink   func(v any) (*generator.Generator[any], error)
	special  func() *generator.Generator[any]
}

// Generate returns a stream of random samples as any.
func (c *Capability) Generate() *generator.Generator[any] {
	return c.generate()
}

// Shrink returns a stream of simpler candidates for v. It fails if the
// dynamic type of v is not the capability's type.
func (c *Capability) Shrink(v any) (*generator.Generator[any], error) {
	return c.shrink(v)
}

// SpecialCases returns the finite boundary-value enumeration as any.
func (c *Capability) SpecialCases() *generator.Generator[any] {
	return c.special()
}

// Registry binds concrete types to their Arbitrary capability. Exactly one
// capability may be bound per type; binding a second is an error, as is
// resolving a type that was never bound. A Registry is safe for concurrent
// use.
type Registry struct {
	mu   sync.RWMutex
	caps map[reflect.Type]*Capability
}

// NewRegistry returns a Registry with the primitive type lattice pre-bound:
// bool, string, every fixed-width signed and unsigned integer type, float32
// and float64. rune and byte are aliases of int32 and uint8 and therefore
// resolve to the integer capability.
func NewRegistry(p *Params) *Registry {
	r := &Registry{caps: make(map[reflect.Type]*Capability)}

	mustRegister(r, Bool())
	mustRegister(r, String(p))
	mustRegister(r, Int[int](p))
	mustRegister(r, Int[int8](p))
	mustRegister(r, Int[int16](p))
	mustRegister(r, Int[int32](p))
	mustRegister(r, Int[int64](p))
	mustRegister(r, Int[uint](p))
	mustRegister(r, Int[uint8](p))
	mustRegister(r, Int[uint16](p))
	mustRegister(r, Int[uint32](p))
	mustRegister(r, Int[uint64](p))
	mustRegister(r, Float[float32](p))
	mustRegister(r, Float[float64](p))

	return r
}

func mustRegister[T any](r *Registry, arb Arbitrary[T]) {
	if err := Register(r, arb); err != nil {
		panic(err)
	}
}

// Register binds arb as the capability for T. The operation shapes are
// guaranteed by the Arbitrary interface, so the only failure mode is a
// duplicate binding.
func Register[T any](r *Registry, arb Arbitrary[T]) error {
	rt := reflect.TypeFor[T]()
	c := &Capability{
		Type: rt,
		generate: func() *generator.Generator[any] {
			return generator.Erase(arb.Generate())
		},
		shrink: func(v any) (*generator.Generator[any], error) {
			tv, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("arbitrary: shrink of %s called with %T value", rt, v)
			}
			return generator.Erase(arb.Shrink(tv)), nil
		},
		special: func() *generator.Generator[any] {
			return generator.Erase(arb.SpecialCases())
		},
	}
	return r.bind(rt, c)
}

func (r *Registry) bind(rt reflect.Type, c *Capability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.caps[rt]; exists {
		return fmt.Errorf("arbitrary: capability for type %s already registered", rt)
	}
	r.caps[rt] = c
	return nil
}

// Resolve returns the capability bound to rt, or a MissingCapabilityError.
func (r *Registry) Resolve(rt reflect.Type) (*Capability, error) {
	r.mu.RLock()
	c, ok := r.caps[rt]
	r.mu.RUnlock()
	if !ok {
		return nil, &MissingCapabilityError{Type: rt}
	}
	return c, nil
}

// For resolves the capability for T. It is the typed convenience over
// Resolve.
func For[T any](r *Registry) (*Capability, error) {
	return r.Resolve(reflect.TypeFor[T]())
}

// RegisterValue binds a capability discovered by reflection on instance.
// The instance must carry exactly the capability shape: a Generate method
// taking nothing, a Shrink method taking one value of the generated type,
// and a SpecialCases method taking nothing, all returning the same
// *generator.Generator instantiation. Any deviation is reported as a
// MalformedCapabilityError before the capability is bound, so ill-shaped
// implementations fail at registration, not at first use.
//
// It exists for callers that hold instances as plain values (plugin-style
// wiring); statically typed code should prefer Register.
func (r *Registry) RegisterValue(instance any) error {
	rv := reflect.ValueOf(instance)
	if !rv.IsValid() {
		return &MalformedCapabilityError{Op: "instance", Reason: "is nil"}
	}
	it := rv.Type()

	shrinkM, genT, err := shrinkShape(rv, it)
	if err != nil {
		return err
	}
	genM, err := nullaryShape(rv, it, "Generate", shrinkM.Type())
	if err != nil {
		return err
	}
	specialM, err := nullaryShape(rv, it, "SpecialCases", shrinkM.Type())
	if err != nil {
		return err
	}

	c := &Capability{
		Type: genT,
		generate: func() *generator.Generator[any] {
			return eraseReflected(genM.Call(nil)[0])
		},
		shrink: func(v any) (*generator.Generator[any], error) {
			vv := reflect.ValueOf(v)
			if !vv.IsValid() || vv.Type() != genT {
				return nil, fmt.Errorf("arbitrary: shrink of %s called with %T value", genT, v)
			}
			return eraseReflected(shrinkM.Call([]reflect.Value{vv})[0]), nil
		},
		special: func() *generator.Generator[any] {
			return eraseReflected(specialM.Call(nil)[0])
		},
	}
	return r.bind(genT, c)
}

// shrinkShape validates the Shrink method and deduces the generated type
// from its single parameter.
func shrinkShape(rv reflect.Value, it reflect.Type) (reflect.Value, reflect.Type, error) {
	m := rv.MethodByName("Shrink")
	if !m.IsValid() {
		return reflect.Value{}, nil, &MalformedCapabilityError{Type: it, Op: "Shrink", Reason: "method missing"}
	}
	mt := m.Type()
	if mt.NumIn() != 1 {
		return reflect.Value{}, nil, &MalformedCapabilityError{
			Type: it, Op: "Shrink",
			Reason: fmt.Sprintf("must take exactly one value, takes %d", mt.NumIn()),
		}
	}
	genT := mt.In(0)
	if err := generatorShape(it, "Shrink", mt, genT); err != nil {
		return reflect.Value{}, nil, err
	}
	return m, genT, nil
}

// nullaryShape validates a no-argument operation returning the same
// generator type as the already-validated Shrink method.
func nullaryShape(rv reflect.Value, it reflect.Type, name string, shrinkT reflect.Type) (reflect.Value, error) {
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, &MalformedCapabilityError{Type: it, Op: name, Reason: "method missing"}
	}
	mt := m.Type()
	if mt.NumIn() != 0 {
		return reflect.Value{}, &MalformedCapabilityError{
			Type: it, Op: name,
			Reason: fmt.Sprintf("must take no values, takes %d", mt.NumIn()),
		}
	}
	if mt.NumOut() != 1 || mt.Out(0) != shrinkT.Out(0) {
		return reflect.Value{}, &MalformedCapabilityError{
			Type: it, Op: name,
			Reason: fmt.Sprintf("must return %s", shrinkT.Out(0)),
		}
	}
	return m, nil
}

// generatorShape checks that an operation returns a generator of the
// expected element type: a single pointer value whose Front method yields
// elemT, with IsExhausted and Advance alongside.
func generatorShape(it reflect.Type, op string, mt reflect.Type, elemT reflect.Type) error {
	if mt.NumOut() != 1 {
		return &MalformedCapabilityError{
			Type: it, Op: op,
			Reason: fmt.Sprintf("must return exactly one value, returns %d", mt.NumOut()),
		}
	}
	out := mt.Out(0)
	front, ok := out.MethodByName("Front")
	if !ok || front.Type.NumIn() != 1 || front.Type.NumOut() != 1 || front.Type.Out(0) != elemT {
		return &MalformedCapabilityError{
			Type: it, Op: op,
			Reason: fmt.Sprintf("must return a generator of %s", elemT),
		}
	}
	if _, ok := out.MethodByName("IsExhausted"); !ok {
		return &MalformedCapabilityError{Type: it, Op: op, Reason: "return value is not a generator"}
	}
	if _, ok := out.MethodByName("Advance"); !ok {
		return &MalformedCapabilityError{Type: it, Op: op, Reason: "return value is not a generator"}
	}
	return nil
}

// eraseReflected adapts a reflectively obtained generator value into a
// Generator[any] by pulling through its methods.
func eraseReflected(genVal reflect.Value) *generator.Generator[any] {
	isExhausted := genVal.MethodByName("IsExhausted")
	front := genVal.MethodByName("Front")
	advance := genVal.MethodByName("Advance")
	first := true
	return generator.New(func() optional.Optional[any] {
		if first {
			first = false
		} else {
			advance.Call(nil)
		}
		if isExhausted.Call(nil)[0].Bool() {
			return optional.Absent[any]()
		}
		return optional.Present(front.Call(nil)[0].Interface())
	})
}
