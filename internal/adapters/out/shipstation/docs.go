// Package shipstation implements the core ports against the ShipStation v1 REST API.
//
// All adapters share one Client, which owns authentication, JSON encoding and the
// retry policy:
//
//	client, err := shipstation.NewClient(shipstation.Config{APIKey: key, APISecret: secret}, logger)
//	if err != nil {
//	    return err
//	}
//	orders := shipstation.NewOrderRepository(client)
//	tags := shipstation.NewTagStore(client)
//
// Failed calls surface as *errs.RemoteCallError, so callers can match them with
// errors.Is(err, errs.ErrRemoteCall).
package shipstation
