package ai

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/slasharena/entity"
	"github.com/milk9111/slasharena/prefabs"
)

// A script defines `update := func(engine, state) { ... }`. state is a map
// private to each enemy that survives between ticks.
const scriptDispatch = `
update(__engine, __state)
`

// Script is a tengo enemy hook. One compiled script drives every enemy that
// uses it.
type Script struct {
	path     string
	compiled *tengo.Compiled
	states   map[int]*tengo.Map
}

func NewScript(path string) (*Script, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("ai: load script %s: %w", path, err)
	}
	return NewScriptSource(path, src)
}

// NewScriptSource compiles src under the given name.
func NewScriptSource(path string, src []byte) (*Script, error) {
	compiled, err := compileScript(src)
	if err != nil {
		return nil, fmt.Errorf("ai: compile script %s: %w", path, err)
	}
	return &Script{
		path:     path,
		compiled: compiled,
		states:   map[int]*tengo.Map{},
	}, nil
}

func compileScript(src []byte) (*tengo.Compiled, error) {
	full := string(src) + "\n" + scriptDispatch
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (s *Script) Path() string {
	return s.path
}

// Reload recompiles from prefabs, keeping per-enemy state. On failure the old
// script stays in place.
func (s *Script) Reload() error {
	src, err := prefabs.LoadScript(s.path)
	if err != nil {
		return fmt.Errorf("ai: load script %s: %w", s.path, err)
	}
	compiled, err := compileScript(src)
	if err != nil {
		return fmt.Errorf("ai: compile script %s: %w", s.path, err)
	}
	s.compiled = compiled
	return nil
}

// Forget drops the state kept for an enemy.
func (s *Script) Forget(id int) {
	delete(s.states, id)
}

func (s *Script) Think(e *entity.Enemy, p *entity.Player) {
	if s == nil || s.compiled == nil || e == nil || !e.Alive() {
		return
	}
	state, ok := s.states[e.ID()]
	if !ok {
		state = &tengo.Map{Value: map[string]tengo.Object{}}
		s.states[e.ID()] = state
	}

	if err := s.compiled.Set("__engine", buildEngine(e, p)); err != nil {
		log.Printf("ai: entity=%d script %s error: %v", e.ID(), s.path, err)
		return
	}
	if err := s.compiled.Set("__state", state); err != nil {
		log.Printf("ai: entity=%d script %s error: %v", e.ID(), s.path, err)
		return
	}
	if err := s.compiled.Run(); err != nil {
		log.Printf("ai: entity=%d script %s update error: %v", e.ID(), s.path, err)
	}
}

func buildEngine(e *entity.Enemy, p *entity.Player) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos := e.Body().Pos
		return pair(pos.X, pos.Y), nil
	}}

	values["get_velocity"] = &tengo.UserFunction{Name: "get_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		vel := e.Body().Vel
		return pair(vel.X, vel.Y), nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if p == nil {
			pos := e.Body().Pos
			return pair(pos.X, pos.Y), nil
		}
		return pair(p.Body.Pos.X, p.Body.Pos.Y), nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, ok := xyArgs(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		e.Body().Vel.X, e.Body().Vel.Y = x, y
		return tengo.TrueValue, nil
	}}

	values["set_aim"] = &tengo.UserFunction{Name: "set_aim", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, ok := xyArgs(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		e.Aim = aimFrom(x, y, e.Aim)
		return tengo.TrueValue, nil
	}}

	values["accel"] = &tengo.UserFunction{Name: "accel", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: e.Config().Accel}, nil
	}}

	values["max_speed"] = &tengo.UserFunction{Name: "max_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: e.Config().MaxSpeed}, nil
	}}

	values["health"] = &tengo.UserFunction{Name: "health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: e.Health().Current}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func pair(x, y float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}
}

func xyArgs(args []tengo.Object) (float64, float64, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return 0, 0, false
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}
