package compile

import (
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Package identity
 ***************************************/

// packageIdSeed namespaces our hashes away from every other fingerprint
// computed by this tool.
var packageIdSeed = utils.StringFingerprint("llvm-prebuilt/package-id")

// PackageId identifies one installed package. It hashes what is actually on
// disk after extraction: the version, the distribution variant and the host
// pair. Flag options are excluded on purpose, every option combination
// reuses the same binaries. Embedded targets fold into a single coarse
// "cortex-m" family tag since all cores share one multilib toolchain.
func (tc Toolchain) PackageId() utils.Fingerprint {
	parts := []string{
		tc.Version,
		tc.Distribution.String(),
		tc.HostOs.String(),
		tc.HostArch.String(),
	}
	if tc.Distribution == DIST_ARM_EMBEDDED {
		parts = append(parts, "cortex-m")
	}
	return utils.StringsFingerprint(packageIdSeed, parts...)
}
