package complete

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tuikit/readline"
)

// Errors returned by the Lua provider.
var (
	// ErrNoCompleteFunc means the script did not define a global
	// `complete` function.
	ErrNoCompleteFunc = errors.New("complete: script defines no complete function")
)

// LuaProvider adapts a Lua script to a completion callback.
//
// The script must define a global function
//
//	function complete(partial, index)
//
// which returns either nil (no more candidates) or a candidate string,
// optionally followed by r, g, b color components in 0..255. The index
// argument starts at zero, matching the widget's enumeration contract.
//
// gopher-lua states are not goroutine-safe, which matches the widget's
// single-threaded model: call Complete only from the event-loop goroutine.
type LuaProvider struct {
	state *lua.LState
	fn    lua.LValue
}

// NewLua compiles and runs script, capturing its complete function.
func NewLua(script string) (*LuaProvider, error) {
	L := lua.NewState()
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("complete: loading script: %w", err)
	}

	fn := L.GetGlobal("complete")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoCompleteFunc
	}
	return &LuaProvider{state: L, fn: fn}, nil
}

// NewLuaFile is NewLua for a script on disk.
func NewLuaFile(path string) (*LuaProvider, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("complete: loading %s: %w", path, err)
	}

	fn := L.GetGlobal("complete")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoCompleteFunc
	}
	return &LuaProvider{state: L, fn: fn}, nil
}

// Complete implements readline.CompleteFunc. Script errors end the
// enumeration rather than surfacing: a broken completion script must not
// break typing.
func (p *LuaProvider) Complete(partial string, index int) (readline.Candidate, bool) {
	err := p.state.CallByParam(lua.P{
		Fn:      p.fn,
		NRet:    4,
		Protect: true,
	}, lua.LString(partial), lua.LNumber(index))
	if err != nil {
		return readline.Candidate{}, false
	}

	ret := p.state.Get(-4)
	r, g, b := p.state.Get(-3), p.state.Get(-2), p.state.Get(-1)
	p.state.Pop(4)

	text, ok := ret.(lua.LString)
	if !ok {
		return readline.Candidate{}, false
	}

	cand := readline.Candidate{Text: string(text)}
	if rn, ok := r.(lua.LNumber); ok {
		gn, gok := g.(lua.LNumber)
		bn, bok := b.(lua.LNumber)
		if gok && bok {
			cand.RGB = [3]uint8{clamp8(rn), clamp8(gn), clamp8(bn)}
			cand.HasColor = true
		}
	}
	return cand, true
}

// Close releases the Lua state.
func (p *LuaProvider) Close() {
	p.state.Close()
}

func clamp8(n lua.LNumber) uint8 {
	v := int(n)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
