package cli

import (
	"fmt"

	"github.com/diillson/alicloud-ops/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     _    _ _      _                 _    ___
    / \  | (_) ___| | ___  _   _  __| |  / _ \ _ __  ___
   / _ \ | | |/ __| |/ _ \| | | |/ _' | | | | | '_ \/ __|
  / ___ \| | | (__| | (_) | |_| | (_| | | |_| | |_) \__ \
 /_/   \_\_|_|\___|_|\___/ \__,_|\__,_|  \___/| .__/|___/
                                              |_|
        `
	orange := color.New(color.FgHiYellow, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(orange(banner))
	fmt.Println(blue(fmt.Sprintf("Alibaba Cloud Ops CLI (v%s)", version.FormatVersion())))
	fmt.Println("Billing cycle data comes from BSS OpenAPI; DNS records from Alidns.")
	fmt.Println()
}
