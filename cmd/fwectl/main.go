// The fwectl command drives the Framework EC from a host shell: battery
// charge threshold and keyboard backlight level, over the kernel
// cros_ec device, a CH347 USB I2C bridge, or a serial debug bridge.
//
// Usage:
//
//	fwectl [flags] threshold [value]
//	fwectl [flags] backlight [value]
//	fwectl [flags] modes <hex>
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/serfreeman1337/go-ch347"
	"github.com/sstallion/go-hid"

	"frameworkec-go/drivers/crosec"
	"frameworkec-go/services/battery"
	"frameworkec-go/services/kblight"
	"frameworkec-go/services/platform"
	"frameworkec-go/types"
)

var (
	transport = flag.String("transport", "dev", "EC channel: dev, i2c or serial")
	devPath   = flag.String("path", crosec.DevPathDefault, "cros_ec device path (dev transport)")
	i2cAddr   = flag.Uint("addr", crosec.I2CAddressDefault, "EC address (i2c transport)")
	serPort   = flag.String("port", "/dev/ttyUSB0", "serial port (serial transport)")
	serBaud   = flag.Int("baud", crosec.SerialBaudDefault, "baud rate (serial transport)")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fwectl [flags] threshold|backlight [value]")
	flag.PrintDefaults()
	os.Exit(2)
}

// ch347Bus narrows the CH347 bridge to the I2C Tx contract.
type ch347Bus struct{ io *ch347.IO }

func (b ch347Bus) Tx(addr uint16, w, r []byte) error { return b.io.I2C(addr, w, r) }

// ch347Path locates the CH347 SPI+I2C+GPIO hidraw interface.
// ID 1a86:55dc QinHeng Electronics, interface 1.
func ch347Path() (string, error) {
	var path string
	hid.Enumerate(0x1a86, 0x55dc, func(info *hid.DeviceInfo) error {
		if info.InterfaceNbr == 1 {
			path = info.Path
		}
		return nil
	})
	if path == "" {
		return "", fmt.Errorf("no CH347 bridge found")
	}
	return path, nil
}

func openTransport() (crosec.Transport, error) {
	switch *transport {
	case "dev":
		return crosec.OpenDevTransport(*devPath)

	case "i2c":
		path, err := ch347Path()
		if err != nil {
			return nil, err
		}
		dev, err := hid.OpenPath(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		bridge := &ch347.IO{Dev: dev}
		if err := bridge.SetI2C(ch347.I2CMode1); err != nil {
			return nil, fmt.Errorf("configure i2c bridge: %w", err)
		}
		return crosec.NewI2CTransport(ch347Bus{io: bridge}, uint16(*i2cAddr)), nil

	case "serial":
		return crosec.OpenSerialTransport(*serPort, *serBaud)
	}
	return nil, fmt.Errorf("unknown transport %q", *transport)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		usage()
	}

	tr, err := openTransport()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fwectl:", err)
		os.Exit(1)
	}

	reg := platform.NewRegistry()
	reg.Add(platform.ECDeviceName, tr)
	handle := platform.Bind(reg, platform.ECDeviceName)
	defer handle.Close()

	dev := crosec.New(handle, crosec.DefaultConfig())

	var cmdErr error
	switch args[0] {
	case "threshold":
		cmdErr = runThreshold(dev, args[1:])
	case "backlight":
		cmdErr = runBacklight(dev, args[1:])
	case "modes":
		cmdErr = runModes(args[1:])
	default:
		usage()
	}
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "fwectl:", cmdErr)
		os.Exit(1)
	}
}

func runThreshold(dev *crosec.Device, args []string) error {
	attr := battery.NewThresholdAttr(dev)
	if err := attr.AttachTo(battery.BatteryName); err != nil {
		return err
	}
	if len(args) == 0 {
		return attr.Show(os.Stdout)
	}
	if err := attr.Store(args[0]); err != nil {
		return err
	}
	// Writes are fire-and-forget; read back to confirm.
	return attr.Show(os.Stdout)
}

func runBacklight(dev *crosec.Device, args []string) error {
	light := kblight.New(dev)
	if len(args) == 0 {
		reg := light.Registration()
		fmt.Printf("%s: %d/%d\n", reg.Name, light.Brightness(), reg.Max)
		return nil
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad level %q: %w", args[0], err)
	}
	return light.SetBrightness(v)
}

// runModes decodes a charge-limit modes byte for debugging.
func runModes(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("modes: hex byte required")
	}
	v, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return fmt.Errorf("bad modes %q: %w", args[0], err)
	}
	m := crosec.ChargeLimitModes(v)
	it := types.NewBitIter(m, types.ChargeLimitModesTable[:])
	for {
		name, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(name)
	}
	return nil
}
