// Package events defines the typed pipeline event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - user_input.*
//   - assistant_response.*
//   - tool_call.*
//   - assistant_speech.*
//   - turn_state.*
//
// Semantics used across the package:
//
//   - Interim: mutable point-in-time hypothesis that can change over time.
//   - Final: terminal immutable text for the current utterance.
//   - Segment: append-only text piece emitted in stream order.
//   - Frame: binary audio chunk payload.
//
// user_input events
//
//   - TranscriptInterim (user_input.transcript_interim): interim transcript
//     hypothesis for the utterance currently being spoken.
//   - TranscriptFinal (user_input.transcript_final): terminal transcript for
//     a completed utterance. Exactly one turn is started per final
//     transcript, and each started turn is terminated by exactly one
//     TurnCompleted.
//
// assistant_response events
//
//   - ResponseSegment (assistant_response.segment): streamed response text
//     segment. The text spoken for a turn is the ordered concatenation of
//     every segment emitted between the turn's final transcript and its
//     TurnCompleted.
//
// tool_call events
//
//   - ToolCallStarted (tool_call.started): tool execution started.
//   - ToolCallCompleted (tool_call.completed): tool execution completed;
//     its ID always matches a previously emitted ToolCallStarted.
//
// assistant_speech events
//
//   - SpeechFrame (assistant_speech.frame): synthesized speech audio chunk.
//
// turn_state events
//
//   - TurnCompleted (turn_state.completed): the current turn ended, whether
//     through the greeting fast path, normal completion, or a caught error.
package events
