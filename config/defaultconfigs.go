package config

// Embedded board descriptions.
// Key: board name passed to Load
// Val: raw JSON bytes for that board

const cfgOrangeCrab = `{
  "name": "orangecrab-feather",
  "address_bits": 32,
  "bus_width": 32,
  "peripherals": [
    {
      "name": "CTRL",
      "base": "0xf0000000",
      "registers": [
        {"name": "RESET", "offset": "0x0", "fields": [
          {"name": "SOC_RST", "offset": 0, "width": 1},
          {"name": "CPU_RST", "offset": 1, "width": 1}
        ]},
        {"name": "SCRATCH", "offset": "0x4", "reset": "0x12345678"},
        {"name": "BUS_ERRORS", "offset": "0x8", "access": "read-only"}
      ]
    },
    {
      "name": "LEDS",
      "base": "0xf0001800",
      "registers": [
        {"name": "OUT", "offset": "0x0", "fields": [
          {"name": "OUT", "offset": 0, "width": 3}
        ]},
        {"name": "PWM_ENABLE", "offset": "0x4", "fields": [
          {"name": "PWM_ENABLE", "offset": 0, "width": 1}
        ]},
        {"name": "PWM_WIDTH", "offset": "0x8", "reset": "0x200"},
        {"name": "PWM_PERIOD", "offset": "0xc", "reset": "0x400"}
      ]
    }
  ]
}`

var embeddedConfigs = map[string][]byte{
	"orangecrab": []byte(cfgOrangeCrab),
}
