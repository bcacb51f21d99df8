// Package project loads the closure of archive files referenced from a
// project file.
//
// A project "Name.rpy" keeps its units in the companion directory
// "Name_rpy".  Subsystem, class and component blocks (ISubsystem, IClass,
// IComponent) that carry a quoted fileName member refer to a unit file
// with the suffix .sbs, .cls or .cmp respectively.  [Load] parses the
// project file and, depth first, every unit file reachable from it.
//
// References to files which do not exist are skipped; they typically name
// units kept outside the project.  Each path is loaded at most once, so
// cyclic references terminate.
//
// A [Store] is not safe for concurrent mutation.
package project
