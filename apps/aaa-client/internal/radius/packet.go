package radius

// Packet はRADIUSパケットを表す。
// 属性列は挿入順に保持され、その順序がワイヤー上の順序となる。
// lengthはヘッダー20バイトと全属性（VSAラッパー含む）の累計で、
// Add系/Change系の呼び出しごとに更新される。
type Packet struct {
	Code          Code
	ID            uint8
	Authenticator [AuthenticatorLen]byte

	length int
	attrs  []*Attribute
	codec  *Codec
	buf    *Buffer // Build後のワイヤー形式。Freeまで保持する。
}

// NewPacket は空のパケットを生成する。IDは1で、送信前に呼び出し元が上書きする。
func (c *Codec) NewPacket(code Code) *Packet {
	return &Packet{
		Code:   code,
		ID:     1,
		length: HeaderLen,
		codec:  c,
	}
}

// Len はワイヤー上のパケット長を返す
func (p *Packet) Len() int {
	return p.length
}

// Attributes は属性列を挿入順で返す。返されたスライスを変更してはならない。
func (p *Packet) Attributes() []*Attribute {
	return p.attrs
}

// Wire はBuild済みのワイヤー形式を返す。未Buildならnil。
func (p *Packet) Wire() []byte {
	if p.buf == nil {
		return nil
	}
	return p.buf.Bytes()[:p.length]
}

// Free は属性列とワイヤーバッファを解放する。
// 解放後のパケットを再利用してはならない。
func (p *Packet) Free() {
	for i := range p.attrs {
		p.attrs[i] = nil
	}
	p.attrs = nil
	p.releaseBuffer()
}

func (p *Packet) releaseBuffer() {
	if p.buf != nil {
		p.buf.Release()
		p.buf = nil
	}
}
