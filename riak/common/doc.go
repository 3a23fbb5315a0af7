// Package common holds the configuration, logging and wire constants shared
// by the rKV client, codec and transport layers.
//
// Key Components:
//
//   - ClientConfig: all parameters a client needs to talk to a store
//     (endpoints, timeout, retry count, client-identity behavior and the
//     conflict re-resolution depth limit).
//
//   - Logger Factory: rKV logs through the dragonboat logger facade with a
//     custom formatter. InitLoggers configures the per-package loggers once
//     at startup; packages obtain their logger via logger.GetLogger.
//
//   - Client Identity: a process-wide identity token generated once and
//     attached as a request header when enabled. See ClientID.
//
//   - Header and media-type constants of the store's HTTP API.
package common
