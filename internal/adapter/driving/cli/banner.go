package cli

import (
	"fmt"

	"github.com/costpilot/ai-cost-dashboard/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$  /$$$$$$        /$$$$$$                        /$$
         /$$__  $$|_  $$_/       /$$__  $$                      | $$
        | $$  \ $$  | $$        | $$  \__/  /$$$$$$   /$$$$$$$ /$$$$$$
        | $$$$$$$$  | $$        | $$       /$$__  $$ /$$_____/|_  $$_/
        | $$__  $$  | $$        | $$      | $$  \ $$|  $$$$$$   | $$
        | $$  | $$  | $$        | $$    $$| $$  | $$ \____  $$  | $$ /$$
        | $$  | $$ /$$$$$$      |  $$$$$$/|  $$$$$$/ /$$$$$$$/  |  $$$$/
        |__/  |__/|______/       \______/  \______/ |_______/    \___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AI Cost Dashboard CLI (v%s)", formattedVersion)))
}
