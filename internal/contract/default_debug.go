//go:build fixedstr_debug

package contract

func defaultHandler() Handler { return Panic }
