// Package testsupport builds configs and spec-root fixtures for tests.
package testsupport
