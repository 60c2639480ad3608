package shell

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("bestword_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// luaCommand exposes a shell command to scripts. The Lua function takes the
// rest of the command line as one string and returns the command's output,
// or nil and an error message.
func luaCommand(name string, run func(*ShellController, *shellcmd) (*Response, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		sc := getShell(L)
		cmd, err := extractFields(strings.TrimSpace(name + " " + L.OptString(1, "")))
		if err == nil {
			var r *Response
			if r, err = run(sc, cmd); err == nil {
				L.Push(lua.LString(r.message))
				return 1
			}
		}
		log.Err(err).Str("cmd", name).Msg("error-executing-script-command")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
}

var luaCommands = map[string]func(*ShellController, *shellcmd) (*Response, error){
	"board": (*ShellController).loadBoard,
	"rack":  (*ShellController).setRack,
	"best":  (*ShellController).best,
	"gen":   (*ShellController).generate,
	"check": (*ShellController).check,
	"place": (*ShellController).place,
	"words": (*ShellController).words,
	"set":   (*ShellController).set,
	"probs": (*ShellController).probs,
}

func (sc *ShellController) newLuaState() *lua.LState {
	L := lua.NewState()
	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal("bestword_shell", lsc)
	for name, run := range luaCommands {
		L.SetGlobal("bestword_"+name, L.NewFunction(luaCommand(name, run)))
	}
	luajson.Preload(L)
	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{}).Loader)
	return L
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}
	L := sc.newLuaState()
	defer L.Close()

	// Arguments after the file name are visible to the script as `arg`.
	argt := L.NewTable()
	for _, a := range cmd.args[1:] {
		argt.Append(lua.LString(a))
	}
	L.SetGlobal("arg", argt)

	if err := L.DoFile(cmd.args[0]); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return nil, nil
}
