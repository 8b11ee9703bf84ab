/*
Package domain contains the core value types of a DPCL pipeline.

It defines the two kinds of entities a pipeline graph connects, and the errors raised while
assembling them. This package is kept pure and free of I/O so it can be shared by the graph,
the manifest decoder and every adapter.

# Key Entities

  - Task: a named unit of work with an optional opaque command, the artifact paths it
    depends on and the artifact paths it produces. Built once through TaskBuilder.
  - Artifact: a file or data unit identified solely by its path.
*/
package domain
