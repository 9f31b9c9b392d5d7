package registry

import (
	"crypto/ed25519"
	"fmt"
	"strconv"

	"github.com/wybiral/torgo"
)

// PublishHiddenService advertises the registry under a Tor v3 hidden
// service address derived from edPriv, proxying torPort to localPort. It
// connects to an already-running Tor control port at controlAddr; starting
// and supervising the Tor process itself is out of scope here.
func PublishHiddenService(controlAddr, controlPassword string, edPriv ed25519.PrivateKey, torPort, localPort int) (serviceID string, err error) {
	ctrl, err := torgo.NewController(controlAddr)
	if err != nil {
		return "", fmt.Errorf("registry: connect tor controller: %w", err)
	}

	if controlPassword == "" {
		err = ctrl.AuthenticateNone()
	} else {
		err = ctrl.AuthenticatePassword(controlPassword)
	}
	if err != nil {
		return "", fmt.Errorf("registry: authenticate tor controller: %w", err)
	}

	svc, err := torgo.OnionFromEd25519(edPriv)
	if err != nil {
		return "", fmt.Errorf("registry: derive onion service: %w", err)
	}
	svc.Ports[torPort] = "127.0.0.1:" + strconv.Itoa(localPort)

	if err := ctrl.AddOnion(svc); err != nil {
		return "", fmt.Errorf("registry: add onion: %w", err)
	}

	sid, err := torgo.ServiceIDFromEd25519(edPriv.Public().(ed25519.PublicKey))
	if err != nil {
		return "", fmt.Errorf("registry: derive service id: %w", err)
	}
	return sid, nil
}
