// Package docs reconciles the paired documentation lists: for each
// (doxygen URL, tag file) pair it resolves the tag file locally or fetches it
// from the remote, and emits one manifest fragment per pair for the install
// step.
//
// The remote fetch is a single attempt with the transport's default timeout
// and no integrity check on the downloaded content. Known gap, kept
// deliberately: inventing a retry policy here would hide flaky documentation
// hosts from the user.
package docs
