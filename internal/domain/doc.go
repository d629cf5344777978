// Package domain contains the core business entities, value objects, and
// domain errors of the application: categories, training centers and the
// athletes that reference them. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
