package geodatum_test

import (
	"fmt"
	"log"

	"github.com/geoconv/geodatum"
)

func Example() {
	ctx, err := geodatum.NewContext(nil)
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Destroy()

	shanghai := geodatum.NewGeoCoord(31.230416, 121.473701, 0, geodatum.WGS84)

	utm, err := ctx.ToUTM(shanghai)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d%c\n", utm.Zone, utm.Band)

	mgrs, err := ctx.ToMGRS(shanghai)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d%c\n", mgrs.Zone, mgrs.Band)

	// Output:
	// 51R
	// 51R
}
