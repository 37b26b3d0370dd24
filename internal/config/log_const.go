/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)
