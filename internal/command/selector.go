// Where: internal/command/selector.go
// What: Build target selection prompt.
// Why: Read the operator's single menu answer and map it to a build mode.
package command

import (
	"fmt"

	domain "github.com/poruru-code/flutterbench/internal/domain/bench"
	"github.com/poruru-code/flutterbench/internal/infra/interaction"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
)

const selectTitle = "Select build target:"

// selectMode prints the menu and reads one answer. There is no retry.
func selectMode(out ui.UserInterface, prompter interaction.Prompter) (domain.Mode, error) {
	out.Header(selectTitle)
	for _, opt := range domain.ChoiceOptions() {
		out.ItemPlain(fmt.Sprintf("%s) %s", opt.Key, opt.Label))
	}
	answer, err := prompter.Input("\nEnter choice [1/2/3]: ")
	if err != nil {
		return "", err
	}
	return domain.ParseChoice(answer)
}

// selectModeTUI shows the same options as an arrow-key menu.
func selectModeTUI(prompter interaction.Prompter) (domain.Mode, error) {
	choices := domain.ChoiceOptions()
	options := make([]interaction.SelectOption, 0, len(choices))
	for _, opt := range choices {
		options = append(options, interaction.SelectOption{Label: opt.Label, Value: opt.Key})
	}
	answer, err := prompter.SelectValue(selectTitle, options)
	if err != nil {
		return "", err
	}
	return domain.ParseChoice(answer)
}
