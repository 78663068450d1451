/*
Package needlework is an embroidery pattern conversion library. It reads proprietary machine
formats into a common stitch command stream, rewrites that stream so it obeys the limits of a
destination machine (maximum stitch and jump length, sequin and speed support, thread changes)
and encodes it back into a binary machine format.

The sub-packages provide the format readers and writers (formats/pec, formats/jef, formats/u01),
the shared binary delta codecs (codec), the color conversions (colorspace) and the fixed
machine palettes together with the palette quantizer (palette).

The package provides a command line interface as well. To check the supported flags type:

	$ needlework --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/needlework"
		"github.com/esimov/needlework/formats/pec"
	)

	func main() {
		p := needlework.NewPattern()
		p.AddThread(needlework.NewThread(0xFF0000))
		p.AddStitchAbsolute(needlework.CmdStitch, 0, 0)
		p.AddStitchAbsolute(needlework.CmdStitch, 100, 0)
		p.End()

		f, err := os.Create("design.pec")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		if err := pec.Write(f, p); err != nil {
			log.Fatalf("Error writing the pattern: %s", err.Error())
		}
	}
*/
package needlework
