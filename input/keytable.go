package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translate maps a terminal key event to a semantic action
func Translate(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return ActionRunLeftBoost
		}
		return ActionRunLeft
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return ActionRunRightBoost
		}
		return ActionRunRight
	case tcell.KeyUp:
		return ActionRunFar
	case tcell.KeyDown:
		return ActionRunNear
	case tcell.KeyEnter:
		return ActionJumpPowerful
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}
	return ActionNone
}

func translateRune(r rune) Action {
	switch r {
	case 'q':
		return ActionQuit
	case 'h':
		return ActionRunLeft
	case 'l':
		return ActionRunRight
	case 'H':
		return ActionRunLeftBoost
	case 'L':
		return ActionRunRightBoost
	case 'k':
		return ActionRunFar
	case 'j':
		return ActionRunNear
	case ' ':
		return ActionJumpHappy
	case 'J':
		return ActionJumpPowerful
	case 'z':
		return ActionSleepToggle
	case 'a':
		return ActionAlert
	case 'p':
		return ActionPouncePrep
	case 'b':
		return ActionNoseBoop
	case 'c':
		return ActionCheekPet
	case '[':
		return ActionEarLeft
	case ']':
		return ActionEarRight
	case 't':
		return ActionTailFlick
	case 's':
		return ActionStartle
	case 'w':
		return ActionSubtleWiggle
	}
	return ActionNone
}
