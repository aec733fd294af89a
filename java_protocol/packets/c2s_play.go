package packets

import (
	jp "github.com/go-mclib/servercore/java_protocol"
	ns "github.com/go-mclib/servercore/net_structures"
)

// C2SKeepAlivePlayPacket represents "Serverbound Keep Alive (play)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(play)
var C2SKeepAlivePlayPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x1B)

type C2SKeepAlivePlayPacketData struct {
	KeepAliveID ns.Long
}

// C2SPingResponsePlayPacket represents "Ping Response (play)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_Response_(play)
var C2SPingResponsePlayPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x18)

type C2SPingResponsePlayPacketData struct {
	ID ns.Int
}

// C2SMessageAcknowledgmentPacket represents "Message Acknowledgment":
// the client telling the server how many pending signed messages it has
// seen, shrinking the server-side acknowledgement window.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Message_Acknowledgment
var C2SMessageAcknowledgmentPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x03)

type C2SMessageAcknowledgmentPacketData struct {
	MessageCount ns.VarInt
}

// C2SChatMessagePacket represents "Chat Message", including the signed
// fields: timestamp, salt, the optional 256-byte signature, and the
// acknowledgement bitset echoing the server's pending window.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chat_Message
var C2SChatMessagePacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x05)

type C2SChatMessagePacketData struct {
	Message      ns.String
	Timestamp    ns.Long
	Salt         ns.Long
	Signature    ns.PrefixedOptional[ns.FixedByteArray] `mc:"length:256"`
	MessageCount ns.VarInt
	Acknowledged ns.FixedBitSet `mc:"length:20"`
}

// C2SPlayerSessionPacket represents "Chat Session Update": the client's
// signed-chat session certificate (session id, expiry, public key, and
// Mojang's signature over it), consumed by chat.ChatState.StartSession.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chat_Session_Update
var C2SPlayerSessionPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x06)

type C2SPlayerSessionPacketData struct {
	SessionID    ns.UUID
	ExpiresAt    ns.Long
	PublicKey    ns.PrefixedByteArray
	KeySignature ns.PrefixedByteArray
}

// C2SClickContainerPacket represents "Click Container": one click-slot
// interaction, carrying the client's view of every slot it changed plus
// the resulting cursor stack. The body is validated against the
// server's window state before any of it is applied.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Click_Container
var C2SClickContainerPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x0B)

type C2SClickContainerPacketData struct {
	WindowID     ns.UnsignedByte
	StateID      ns.VarInt
	Slot         ns.Short
	Button       ns.Byte
	Mode         ns.VarInt
	ChangedSlots ns.PrefixedArray[ns.ContainerSlot]
	CarriedItem  ns.ItemSlot
}

// C2SCloseContainerPacket represents "Close Container (serverbound)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Close_Container_(serverbound)
var C2SCloseContainerPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x0C)

type C2SCloseContainerPacketData struct {
	WindowID ns.UnsignedByte
}

// C2SPlayerActionPacket represents "Player Action": digging progress
// and drop-key item drops.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Action
var C2SPlayerActionPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x1D)

type C2SPlayerActionPacketData struct {
	Status   ns.VarInt
	Location ns.Position
	Face     ns.Byte
	Sequence ns.VarInt
}

// C2SSetHeldItemPacket represents "Set Held Item (serverbound)": the
// client switching its selected hotbar slot.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Held_Item_(serverbound)
var C2SSetHeldItemPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x28)

type C2SSetHeldItemPacketData struct {
	Slot ns.Short
}

// C2SUseItemOnPacket represents "Use Item On": a block interaction
// carrying the in-block cursor position and the sequence number the
// server acknowledges.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Use_Item_On
var C2SUseItemOnPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x31)

type C2SUseItemOnPacketData struct {
	Hand        ns.VarInt
	Location    ns.Position
	Face        ns.VarInt
	CursorX     ns.Float
	CursorY     ns.Float
	CursorZ     ns.Float
	InsideBlock ns.Boolean
	Sequence    ns.VarInt
}

// C2STeleportConfirmPacket represents "Teleport Confirm" (serverbound/play)
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Teleport_Confirm
var C2STeleportConfirmPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x00)

type C2STeleportConfirmPacketData struct {
	TeleportID ns.VarInt
}
