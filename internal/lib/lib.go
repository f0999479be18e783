// Package lib holds modules that do not fit strictly into other layers.
//
// It contains shared utilities and background job processing (Redis/Asynq).
package lib
