// Package provision installs and removes a prebuilt binary staged by the
// release build.
//
// A release build leaves one binary per platform under a staging root:
//
//	<stagingRoot>/<tool>_<os>_<archLabel>/<name>
//
// Install picks the directory matching the host, copies the binary into the
// installation directory and keeps its permission bits. Uninstall deletes
// the installed copy.
//
// # Installation directory
//
// The directory comes from a DirectoryResolver: either a fixed path from
// package metadata (FixedDir) or the trimmed stdout of a command such as
// "npm prefix -g" (CommandResolver).
//
// # Concurrency
//
// Nothing is locked. Two installs racing on the same path leave whichever
// copy finished last; on Unix each copy is swapped in atomically so the
// installed file is never observed half-written.
//
// # Usage
//
//	p, err := provision.New(provision.Options{
//	    Spec:     spec,
//	    Platform: info.Key(),
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//	return p.Run(ctx, provision.CommandInstall)
package provision
