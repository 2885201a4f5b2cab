package chaincode

import (
	"crypto/x509"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = "x509::CN=owner"
	coopID  = "x509::CN=coop-1"
	otherID = "x509::CN=stranger"
	walletA = "x509::CN=wallet-a"
	walletB = "x509::CN=wallet-b"
	walletC = "x509::CN=wallet-c"
)

// fakeIdentity satisfies cid.ClientIdentity with a fixed ID.
type fakeIdentity struct {
	id string
}

func (f *fakeIdentity) GetID() (string, error)    { return f.id, nil }
func (f *fakeIdentity) GetMSPID() (string, error) { return "Org1MSP", nil }
func (f *fakeIdentity) GetAttributeValue(string) (string, bool, error) {
	return "", false, nil
}
func (f *fakeIdentity) AssertAttributeValue(name, _ string) error {
	return fmt.Errorf("attribute %s not found", name)
}
func (f *fakeIdentity) GetX509Certificate() (*x509.Certificate, error) { return nil, nil }

type harness struct {
	t        *testing.T
	stub     *shimtest.MockStub
	ctx      *contractapi.TransactionContext
	identity *fakeIdentity
	cc       *SmartContract
	tx       int
}

func newHarness(t *testing.T) *harness {
	stub := shimtest.NewMockStub("coffee", nil)
	identity := &fakeIdentity{}
	ctx := new(contractapi.TransactionContext)
	ctx.SetStub(stub)
	ctx.SetClientIdentity(identity)
	return &harness{t: t, stub: stub, ctx: ctx, identity: identity, cc: NewSmartContract(nil)}
}

// setupStub returns a ledger initialized by ownerID with coopID authorized.
func setupStub(t *testing.T) *harness {
	h := newHarness(t)
	require.NoError(t, h.cc.InitLedger(h.as(ownerID), "Coffee Harvest", "COFFEE"))
	require.NoError(t, h.cc.AddCooperative(h.as(ownerID), coopID))
	return h
}

// as starts a new mock transaction submitted by id.
func (h *harness) as(id string) *contractapi.TransactionContext {
	h.drain()
	h.tx++
	h.stub.MockTransactionStart(fmt.Sprintf("tx%d", h.tx))
	h.identity.id = id
	return h.ctx
}

func (h *harness) drain() (name string, payload []byte) {
	for {
		select {
		case ev := <-h.stub.ChaincodeEventsChannel:
			name, payload = ev.EventName, ev.Payload
		default:
			return name, payload
		}
	}
}

// event decodes the last event emitted since the transaction started.
func (h *harness) event(v interface{}) string {
	name, payload := h.drain()
	require.NotEmpty(h.t, name, "no event emitted")
	require.NoError(h.t, json.Unmarshal(payload, v))
	return name
}

func (h *harness) registerFarmer(nationalID, wallet string) {
	require.NoError(h.t, h.cc.RegisterFarmer(h.as(coopID), nationalID, wallet))
}

func (h *harness) mint(nationalID string, qty uint64) uint64 {
	id, err := h.cc.MintHarvest(h.as(coopID), nationalID, qty, "AA", "2024-01-01", "none", "Organic")
	require.NoError(h.t, err)
	return id
}
