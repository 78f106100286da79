package proc

import "strings"

func IsVDSO(name string) bool { return name == "[vdso]" }

// isPseudo reports mappings that are not backed by a loadable object.
func isPseudo(name string) bool {
	return name == "" ||
		strings.HasPrefix(name, "//anon") ||
		strings.HasPrefix(name, "/dev/zero") ||
		strings.HasPrefix(name, "/anon_hugepage") ||
		strings.HasPrefix(name, "[stack") ||
		strings.HasPrefix(name, "/SYSV") ||
		strings.HasPrefix(name, "[heap]") ||
		strings.HasPrefix(name, "[vsyscall]") ||
		strings.HasPrefix(name, "[vvar")
}
