// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"maps"
	"os"
	"slices"

	"github.com/korrel8r/vector/internal/pkg/enumflag"
	"github.com/pkg/profile"
)

const (
	profileEnv     = "VECTOR_PROFILE"
	profilePathEnv = "VECTOR_PROFILE_PATH"
)

var (
	profileTypes = map[string]func(*profile.Profile){
		"block": profile.BlockProfile,
		"cpu":   profile.CPUProfile,
		"mem":   profile.MemProfile,
		"alloc": profile.MemProfileAllocs,
		"heap":  profile.MemProfileHeap,
		"clock": profile.ClockProfile,
		"trace": profile.TraceProfile,
	}
	profileTypeFlag = enumflag.NewOptional(os.Getenv(profileEnv), slices.Collect(maps.Keys(profileTypes))...)
	profilePathFlag = rootCmd.PersistentFlags().String("profilePath", os.Getenv(profilePathEnv), "Output path for profile")

	profiler interface{ Stop() } = noopStop{}
)

func init() {
	rootCmd.PersistentFlags().Var(profileTypeFlag, "profile", profileTypeFlag.DocString("Enable profiling"))
}

type noopStop struct{}

func (noopStop) Stop() {}

// StartProfile starts the profile selected by --profile, the caller must call Stop.
func StartProfile() interface{ Stop() } {
	if opt, ok := profileTypes[profileTypeFlag.String()]; ok {
		if *profilePathFlag == "" {
			*profilePathFlag = "."
		}
		log.V(1).Info("start profile", "type", profileTypeFlag.String(), "path", *profilePathFlag)
		return profile.Start(profile.ProfilePath(*profilePathFlag), opt, profile.Quiet)
	}
	return noopStop{}
}
