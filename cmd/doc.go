// Package cmd implements the rkv command line interface.
//
// The CLI is a thin layer over the client packages: the kv command group
// covers key fetch/store/delete and secondary-index queries plus a small
// performance testing tool, and the bucket command group reads and writes
// bucket properties. Configuration comes from flags, RKV_* environment
// variables and .env files.
package cmd
