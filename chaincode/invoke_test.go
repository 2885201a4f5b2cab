package chaincode

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-protos-go/msp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serializedIdentity builds a creator the way a peer presents it: an MSP
// serialized identity wrapping a PEM certificate with the given common name.
func serializedIdentity(t *testing.T, commonName string) []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: commonName, Organization: []string{"Org1"}},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	creator, err := proto.Marshal(&msp.SerializedIdentity{
		Mspid:   "Org1MSP",
		IdBytes: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
	})
	require.NoError(t, err)
	return creator
}

type invoker struct {
	t    *testing.T
	stub *shimtest.MockStub
	tx   int
}

func newInvoker(t *testing.T) *invoker {
	cc, err := contractapi.NewChaincode(NewSmartContract(nil))
	require.NoError(t, err)
	return &invoker{t: t, stub: shimtest.NewMockStub("coffee", cc)}
}

// invoke submits fn with args as creator and returns the response status
// and payload or message.
func (i *invoker) invoke(creator []byte, fn string, args ...string) (int32, string) {
	i.tx++
	i.stub.Creator = creator
	input := [][]byte{[]byte(fn)}
	for _, arg := range args {
		input = append(input, []byte(arg))
	}
	resp := i.stub.MockInvoke(fmt.Sprintf("tx%d", i.tx), input)
	for len(i.stub.ChaincodeEventsChannel) > 0 {
		<-i.stub.ChaincodeEventsChannel
	}
	if resp.Status != 200 {
		return resp.Status, resp.Message
	}
	return resp.Status, string(resp.Payload)
}

func (i *invoker) mustInvoke(creator []byte, fn string, args ...string) string {
	status, out := i.invoke(creator, fn, args...)
	require.EqualValues(i.t, 200, status, "%s: %s", fn, out)
	return out
}

func TestChaincodeInvoke(t *testing.T) {
	i := newInvoker(t)
	owner := serializedIdentity(t, "owner")
	coop := serializedIdentity(t, "coop-1")
	farmer := serializedIdentity(t, "farmer-1")

	i.mustInvoke(owner, "InitLedger", "Coffee Harvest", "COFFEE")
	coopID := i.mustInvoke(coop, "ClientAccountID")
	walletID := i.mustInvoke(farmer, "ClientAccountID")
	require.NotEmpty(t, coopID)

	i.mustInvoke(owner, "AddCooperative", coopID)
	assert.Equal(t, "true", i.mustInvoke(farmer, "IsCooperative", coopID))

	status, msg := i.invoke(farmer, "RegisterFarmer", "ID1", walletID)
	assert.EqualValues(t, 500, status)
	assert.Contains(t, msg, "unauthorized caller")

	i.mustInvoke(coop, "RegisterFarmer", "ID1", walletID)
	assert.Equal(t, "1", i.mustInvoke(coop, "MintHarvest", "ID1", "50", "AA", "2024-01-01", "none", "Organic"))
	assert.Equal(t, walletID, i.mustInvoke(farmer, "OwnerOf", "1"))

	var harvest Harvest
	require.NoError(t, json.Unmarshal([]byte(i.mustInvoke(farmer, "GetHarvest", "1")), &harvest))
	assert.Equal(t, Harvest{
		NationalID:     "ID1",
		QuantityKg:     50,
		QualityGrade:   "AA",
		HarvestDate:    "2024-01-01",
		FertilizerUsed: "none",
		Certifications: "Organic",
	}, harvest)

	var ids []uint64
	require.NoError(t, json.Unmarshal([]byte(i.mustInvoke(farmer, "GetFarmerHarvests", "ID1")), &ids))
	assert.Equal(t, []uint64{1}, ids)
}

func TestChaincodeInvokeRejectsNegativeQuantity(t *testing.T) {
	i := newInvoker(t)
	owner := serializedIdentity(t, "owner")
	coop := serializedIdentity(t, "coop-1")

	i.mustInvoke(owner, "InitLedger", "Coffee Harvest", "COFFEE")
	coopID := i.mustInvoke(coop, "ClientAccountID")
	i.mustInvoke(owner, "AddCooperative", coopID)
	i.mustInvoke(coop, "RegisterFarmer", "ID1", coopID)

	status, msg := i.invoke(coop, "MintHarvest", "ID1", "-5", "AA", "2024-01-01", "none", "Organic")
	assert.EqualValues(t, 500, status)
	assert.Contains(t, msg, "-5")

	assert.Equal(t, "0", i.mustInvoke(coop, "TotalHarvests"))
}

func TestChaincodeInvokeQueries(t *testing.T) {
	i := newInvoker(t)
	owner := serializedIdentity(t, "owner")
	coop := serializedIdentity(t, "coop-1")

	i.mustInvoke(owner, "InitLedger", "Coffee Harvest", "COFFEE")
	coopID := i.mustInvoke(coop, "ClientAccountID")
	i.mustInvoke(owner, "AddCooperative", coopID)
	i.mustInvoke(coop, "RegisterFarmer", "ID1", coopID)

	var harvest Harvest
	require.NoError(t, json.Unmarshal([]byte(i.mustInvoke(coop, "GetHarvest", "42")), &harvest))
	assert.Equal(t, Harvest{}, harvest)

	assert.Equal(t, "[]", i.mustInvoke(coop, "GetFarmerHarvests", "ID1"))

	status, msg := i.invoke(coop, "GetFarmerHarvests", "ID9")
	assert.EqualValues(t, 500, status)
	assert.Contains(t, msg, "farmer not registered: ID9")
}
