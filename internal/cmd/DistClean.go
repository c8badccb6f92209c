package cmd

import (
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * distclean command
 ***************************************/

var CommandDistClean = utils.NewCommand(
	CATEGORY_CACHE, "distclean",
	"remove every installed package and cached download",
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		if err := utils.UFS.RemoveAll(utils.UFS.Packages); err != nil {
			return err
		}
		if err := utils.UFS.RemoveAll(utils.UFS.Transient); err != nil {
			return err
		}
		base.LogClaim(LogCmd, "removed %q and %q", utils.UFS.Packages, utils.UFS.Transient)
		return nil
	}))
