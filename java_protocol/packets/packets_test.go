package packets_test

import (
	"bytes"
	"testing"

	jp "github.com/go-mclib/servercore/java_protocol"
	ps "github.com/go-mclib/servercore/java_protocol/packets"
	ns "github.com/go-mclib/servercore/net_structures"
)

var testPackets = map[*jp.Packet][]byte{}

func TestPackets(t *testing.T) {
	// build one concrete test: C2S Client Information (configuration)
	pkt, err := ps.C2SClientInformationPacket.WithData(ps.C2SClientInformationPacketData{
		Locale:              ns.String("en_us"),
		ViewDistance:        ns.Byte(10),
		ChatMode:            ns.VarInt(0),
		ChatColors:          ns.Boolean(true),
		DisplayedSkinParts:  ns.UnsignedByte(0x7f),
		MainHand:            ns.VarInt(1),
		EnableTextFiltering: ns.Boolean(true),
		AllowServerListings: ns.Boolean(true),
	})
	if err != nil {
		t.Fatalf("failed to build packet: %v", err)
	}
	// Expect trailing ParticleStatus VarInt(0) byte and adjusted length (0x0F)
	expected := []byte{0x0F, 0x00, 0x05, 0x65, 0x6e, 0x5f, 0x75, 0x73, 0x0a, 0x00, 0x01, 0x7f, 0x01, 0x01, 0x01, 0x00}

	actual, err := pkt.ToBytes(-1)
	if err != nil {
		t.Errorf("Error marshalling packet: %v", err)
	}
	if !bytes.Equal(actual, expected) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

func TestClickContainerRoundTrip(t *testing.T) {
	original := ps.C2SClickContainerPacketData{
		WindowID: ns.UnsignedByte(1),
		StateID:  ns.VarInt(12),
		Slot:     ns.Short(20),
		Button:   ns.Byte(0),
		Mode:     ns.VarInt(0),
		ChangedSlots: ns.PrefixedArray[ns.ContainerSlot]{
			{SlotNumber: ns.Short(20), SlotData: ns.ItemSlot{}},
		},
		CarriedItem: ns.ItemSlot{Present: true, ItemID: ns.VarInt(64), Count: ns.Byte(2)},
	}

	data, err := jp.PacketDataToBytes(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var result ps.C2SClickContainerPacketData
	if err := jp.BytesToPacketData(data, &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if result.WindowID != original.WindowID || result.StateID != original.StateID ||
		result.Slot != original.Slot || result.Mode != original.Mode {
		t.Errorf("header mismatch: got %+v", result)
	}
	if len(result.ChangedSlots) != 1 || result.ChangedSlots[0].SlotNumber != 20 {
		t.Errorf("changed slots mismatch: %+v", result.ChangedSlots)
	}
	if result.ChangedSlots[0].SlotData.Present {
		t.Error("changed slot should decode as empty")
	}
	if !result.CarriedItem.Present || result.CarriedItem.ItemID != 64 || result.CarriedItem.Count != 2 {
		t.Errorf("carried item mismatch: %+v", result.CarriedItem)
	}
}

func TestSetContainerSlotRoundTrip(t *testing.T) {
	original := ps.S2CSetContainerSlotPacketData{
		WindowID: ns.Byte(1),
		StateID:  ns.VarInt(3),
		Slot:     ns.Short(21),
		SlotData: ns.ItemSlot{Present: true, ItemID: ns.VarInt(770), Count: ns.Byte(1)},
	}

	data, err := jp.PacketDataToBytes(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var result ps.S2CSetContainerSlotPacketData
	if err := jp.BytesToPacketData(data, &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if result != original {
		t.Errorf("round trip mismatch: got %+v, want %+v", result, original)
	}
}

func TestBlockUpdateEncodesKnownBytes(t *testing.T) {
	pkt, err := ps.S2CBlockUpdatePacket.WithData(ps.S2CBlockUpdatePacketData{
		Location: ns.Position{X: 0, Y: 0, Z: 0},
		BlockID:  ns.VarInt(5),
	})
	if err != nil {
		t.Fatalf("failed to build packet: %v", err)
	}

	// length 10 = packet id (1) + position (8) + VarInt(5) (1)
	expected := []byte{0x0A, 0x09, 0, 0, 0, 0, 0, 0, 0, 0, 0x05}
	actual, err := pkt.ToBytes(-1)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !bytes.Equal(actual, expected) {
		t.Errorf("expected % x, got % x", expected, actual)
	}
}

func TestUpdateSectionBlocksRoundTrip(t *testing.T) {
	original := ps.S2CUpdateSectionBlocksPacketData{
		ChunkSectionPosition: ns.Long(0x0000400000100003),
		SuppressLightUpdates: ns.Boolean(false),
		Blocks: ns.PrefixedArray[ns.VarLong]{
			ns.VarLong(5 << 12),
			ns.VarLong(7<<12 | 1<<8 | 2<<4 | 3),
			ns.VarLong(9<<12 | 15),
		},
	}

	data, err := jp.PacketDataToBytes(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var result ps.S2CUpdateSectionBlocksPacketData
	if err := jp.BytesToPacketData(data, &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if result.ChunkSectionPosition != original.ChunkSectionPosition {
		t.Errorf("section position mismatch: got %x", result.ChunkSectionPosition)
	}
	if len(result.Blocks) != 3 {
		t.Fatalf("expected 3 packed updates, got %d", len(result.Blocks))
	}
	for i := range original.Blocks {
		if result.Blocks[i] != original.Blocks[i] {
			t.Errorf("block %d mismatch: got %d, want %d", i, result.Blocks[i], original.Blocks[i])
		}
	}
}

func TestChatMessageSignedRoundTrip(t *testing.T) {
	sig := make([]byte, 256)
	for i := range sig {
		sig[i] = byte(255 - i%256)
	}
	original := ps.C2SChatMessagePacketData{
		Message:   ns.String("hello"),
		Timestamp: ns.Long(1700000000000),
		Salt:      ns.Long(-12345),
		Signature: ns.PrefixedOptional[ns.FixedByteArray]{
			Present: true,
			Value:   ns.FixedByteArray{Length: 256, Data: sig},
		},
		MessageCount: ns.VarInt(4),
		Acknowledged: ns.FixedBitSet{Length: 20, Data: []byte{0x01, 0x00, 0x08}},
	}

	data, err := jp.PacketDataToBytes(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var result ps.C2SChatMessagePacketData
	if err := jp.BytesToPacketData(data, &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if result.Message != original.Message || result.Timestamp != original.Timestamp || result.Salt != original.Salt {
		t.Errorf("body mismatch: got %+v", result)
	}
	if !result.Signature.Present || len(result.Signature.Value.Data) != 256 {
		t.Fatalf("signature not preserved: %+v", result.Signature)
	}
	for i, b := range result.Signature.Value.Data {
		if b != sig[i] {
			t.Fatalf("signature byte %d mismatch", i)
		}
	}
	if result.MessageCount != original.MessageCount {
		t.Errorf("message count mismatch: got %d", result.MessageCount)
	}
}
