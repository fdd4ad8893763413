// Package iproute models the JSON documents printed by iproute2 (`ip -j addr`,
// `ip -j -4 route`, `ip -j -6 route`) and decodes them.
//
// Only the fields needed to regenerate static configuration are kept. Unknown
// fields are ignored and absent optional fields decode to their zero value.
package iproute
