package tac

import "fmt"

// Machine executes a Program instruction by instruction, binding each
// destination temporary as it goes. The value bound by the last instruction
// is the program's result.
type Machine struct {
	temps map[string]int64
}

func NewMachine() *Machine {
	return &Machine{temps: make(map[string]int64)}
}

// Run executes prog and returns its result. Reading a temporary that no
// earlier instruction has defined is an error, as is an empty program.
func (m *Machine) Run(prog Program) (int64, error) {
	if len(prog) == 0 {
		return 0, fmt.Errorf("empty program")
	}

	for _, in := range prog {
		left, err := m.value(in.Left)
		if err != nil {
			return 0, err
		}
		right, err := m.value(in.Right)
		if err != nil {
			return 0, err
		}

		result, err := in.Op.Apply(left, right)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", in, err)
		}
		m.temps[in.Dest] = result
	}

	return m.temps[prog[len(prog)-1].Dest], nil
}

func (m *Machine) value(o Operand) (int64, error) {
	if o.IsConst() {
		return o.Value, nil
	}
	v, ok := m.temps[o.Name]
	if !ok {
		return 0, fmt.Errorf("undefined temporary %q", o.Name)
	}
	return v, nil
}
